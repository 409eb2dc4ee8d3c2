package fetch

import (
	"net/http"

	"ds_helper/cfg"
	"ds_helper/util/network"

	"github.com/sirupsen/logrus"
)

// repo represents dependencies holder for this package
type repo struct {
	log        *logrus.Logger
	cfg        cfg.Root
	httpClient *http.Client
}

// NewRepo returns new dependencies holder for this package
func NewRepo(log *logrus.Logger, cfg cfg.Root) repo {
	httpClient := network.NewHttpClient(cfg.Fetch.RespTimeout, cfg.Fetch.UserAgent)
	return repo{log: log, cfg: cfg, httpClient: httpClient}
}
