package services

const (
	LogActionBalanceCalc  = "BALANCE_CALC"
	LogActionResultStore  = "RESULT_STORE"
	LogActionRecalcAll    = "RECALC_ALL"
	LogActionResultExport = "RESULT_EXPORT"
	LogOutcomeSuccess     = "SUCCESS"
	LogOutcomeFail        = "FAIL"
)
