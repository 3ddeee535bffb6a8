package metrics

var (
	Contract = NopContractMetrics()
)
