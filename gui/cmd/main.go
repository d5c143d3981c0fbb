//go:build js
// +build js

package main

import (
	"context"

	"github.com/ctessum/eeviewer/gui"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)

	v, err := gui.NewViewer(gui.DefaultBackend(), logrus.StandardLogger())
	if err != nil {
		logrus.Fatal(err)
	}
	if err := v.Run(context.Background()); err != nil {
		logrus.WithError(err).Error("viewer failed to start")
	}

	select {} // Block
}
