package ioc

import (
	"time"

	"github.com/ecodeclub/contesthub/internal/contest"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitContestModule(db *egorm.Component, ec ecache.Cache) (*contest.Module, error) {
	type ContestConfig struct {
		SourceTimeoutSec     int `yaml:"sourceTimeoutSec"`
		MaxPages             int `yaml:"maxPages"`
		SyncJobTimeoutSec    int `yaml:"syncJobTimeoutSec"`
		RefreshJobTimeoutSec int `yaml:"refreshJobTimeoutSec"`
	}
	var cfg ContestConfig
	err := econf.UnmarshalKey("contest", &cfg)
	if err != nil {
		panic(err)
	}
	return contest.InitModule(db, ec, contest.Config{
		SourceTimeout:     time.Duration(cfg.SourceTimeoutSec) * time.Second,
		MaxPages:          cfg.MaxPages,
		SyncJobTimeout:    time.Duration(cfg.SyncJobTimeoutSec) * time.Second,
		RefreshJobTimeout: time.Duration(cfg.RefreshJobTimeoutSec) * time.Second,
	})
}
