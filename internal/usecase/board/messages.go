package board

// User-facing notification texts
const (
	MsgListFailed   = "Erro ao listar reservas!"
	MsgCreated      = "Reserva cadastrada com sucesso!"
	MsgCreateFailed = "Erro ao criar reserva!"
	MsgUpdated      = "Reserva atualizada com sucesso!"
	MsgUpdateFailed = "Erro ao editar reserva!"
	MsgDeleted      = "Reserva excluída com sucesso!"
	MsgDeleteFailed = "Erro ao excluir reserva!"
)
