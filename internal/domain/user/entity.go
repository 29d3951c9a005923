package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName       = errors.New("nome não pode ser vazio")
	ErrInvalidEmail    = errors.New("email inválido")
	ErrWeakPassword    = errors.New("senha deve ter ao menos 6 caracteres")
	ErrInvalidRole     = errors.New("papel de usuário inválido")
	ErrPendingApproval = errors.New("cadastro aguardando aprovação")
)

// Role representa o papel/função do usuário
type Role string

// Constantes para Role
const (
	RoleSales   Role = "vendas"        // Atendimento e orçamentos
	RoleKitchen Role = "cozinha"       // Produção
	RoleAdmin   Role = "administrador" // Administrador do sistema
)

// IsValid verifica se o papel é conhecido
func (r Role) IsValid() bool {
	return r == RoleSales || r == RoleKitchen || r == RoleAdmin
}

// User representa um usuário do sistema
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"` // O campo senha não é retornado nas respostas JSON
	Role        Role       `json:"role"`
	Approved    bool       `json:"approved"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewUser cria um usuário ainda não aprovado
func NewUser(name, email, password string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if role == "" {
		role = RoleSales
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrWeakPassword
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// CanLogin verifica se o usuário já foi aprovado
func (u *User) CanLogin() error {
	if !u.Approved {
		return ErrPendingApproval
	}
	return nil
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
