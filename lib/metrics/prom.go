package metrics

func InitPrometheusMetrics() {
	Contract = PromContractMetrics()
}
