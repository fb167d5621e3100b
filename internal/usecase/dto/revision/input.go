package revisiondto

import "github.com/atelie-design/pedido-service/internal/domain"

type CreateRevisionInput struct {
	PedidoID    string
	Description string
	Files       []domain.RevisionFile
	RequestedBy domain.RevisionActor
	ActorID     string
}

type UpdateRevisionStatusInput struct {
	RevisionID    string
	Status        domain.RevisionStatus
	AdminResponse string
	ActorID       string
}
