package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cellsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cosmo",
	Subsystem: "frequency",
	Name:      "cells_total",
	Help:      "Computed frequency cells by respondent group, section and outcome.",
}, []string{"role", "section", "status"})

var unrecognizedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cosmo",
	Subsystem: "frequency",
	Name:      "unrecognized_answers_total",
	Help:      "Answers excluded from totals because no rating rule matched.",
}, []string{"role", "section"})
