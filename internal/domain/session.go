package domain

// Credentials são repassadas ao endpoint de login da API da Astro sem
// qualquer validação local além de campos obrigatórios.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionInfo descreve a sessão local para o navegador. O token nunca é
// exposto de volta, apenas sua presença.
type SessionInfo struct {
	Authenticated bool `json:"authenticated"`
}
