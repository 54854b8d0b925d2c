package main

import (
	"github.com/aretw0/najia"
	"github.com/aretw0/najia/internal/cli"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/spf13/cobra"
)

// caster bundles an engine with the store it writes to.
type caster struct {
	engine *najia.Engine
	store  cli.Store
	query  string
}

func newCaster(cmd *cobra.Command, hooks ...domain.LifecycleHooks) (*caster, error) {
	store, err := cli.OpenStore(cmd.Context(), cfg.Store)
	if err != nil {
		return nil, err
	}
	c := &caster{store: store}
	c.engine, err = cli.CreateEngine(cfg, logger, store, hooks...)
	if err != nil {
		c.close()
		return nil, err
	}
	c.query, _ = cmd.Flags().GetString("query")
	return c, nil
}

func (c *caster) close() {
	if c.store == nil {
		return
	}
	if err := c.store.Close(); err != nil {
		logger.Warn("failed to close store", "error", err)
	}
}
