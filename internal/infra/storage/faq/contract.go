package faq

import "github.com/m04kA/booking-platform/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
