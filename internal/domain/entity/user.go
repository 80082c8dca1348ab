package entity

// User usuário de acesso ao sistema (users.json).
// A senha é armazenada apenas como hash bcrypt.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"senha_hash"`
}
