package deliverabledto

type AddDeliverableInput struct {
	PedidoID    string
	FileURL     string
	FileName    string
	FileType    string
	FileSize    int64
	IsFinal     bool
	ExpiresDays int32
}
