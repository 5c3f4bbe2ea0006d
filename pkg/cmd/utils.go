package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jaky1206/renko-chart-demo/pkg/loader"
	"github.com/jaky1206/renko-chart-demo/pkg/metrics"
	"github.com/jaky1206/renko-chart-demo/pkg/types"
	"github.com/jaky1206/renko-chart-demo/pkg/util"
)

// loadDataset loads the dataset of the key argument, or the first dataset of the configured
// source when no key is given. The key is a csv file path, a week string or a week number.
func loadDataset(ctx context.Context, args []string) (*types.Series, error) {
	source, closeSource, err := loader.NewSource(ctx, userConfig)
	if err != nil {
		return nil, err
	}

	defer func() {
		util.LogErr(closeSource(), "can not close the data source")
	}()

	var key string
	if len(args) > 0 {
		key = args[0]
	} else {
		keys, err := source.List(ctx)
		if err != nil {
			return nil, err
		}

		if len(keys) == 0 {
			return nil, fmt.Errorf("no dataset found in the %s source", userConfig.Source)
		}

		key = keys[0]
		log.Infof("no dataset is given, using the first dataset %s", key)
	}

	profile := util.StartTimeProfile("load " + key)
	series, err := source.Load(ctx, key)
	metrics.ObserveLoad(string(userConfig.Source), err)
	if err != nil {
		return nil, err
	}

	profile.StopAndLog(log.Debugf)
	return series, nil
}
