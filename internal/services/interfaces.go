package services

import "context"

type LogWriter interface {
	CreateLog(ctx context.Context, action string, outcome string, message *string) error
}

type ClimateResolver interface {
	ClimateForName(ctx context.Context, name string) (Climate, error)
}

type BalanceCalculator interface {
	Calculate(input BalanceInput) (BalanceResult, error)
}
