package metrics

const (
	Namespace         = "agora"
	ContractSubsystem = "contract"
)
