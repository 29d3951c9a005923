package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ListPending lista os cadastros aguardando aprovação
	ListPending(ctx context.Context) ([]*User, error)

	// SetApproval aprova ou bloqueia um usuário e define seu papel
	SetApproval(ctx context.Context, id string, approved bool, role Role) error

	// UpdateLastLogin atualiza o timestamp de último login do usuário
	UpdateLastLogin(ctx context.Context, id string) error
}
