package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrUnauthorized = "AUTH_001" // Segredo ausente ou diferente do configurado

	// Erros de configuração
	ErrMissingCredentials = "CFG_001" // Credenciais externas não configuradas

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes ou fora do intervalo
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Recursos inexistentes
	ErrNotFound = "NF_001"

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_002" // Erro retornado pelo Yandex Direct ou pelo modelo
	ErrStorage         = "SRV_003" // Erro ao ler ou gravar relatórios
)

var httpStatusMap = map[string]int{
	ErrUnauthorized:        http.StatusUnauthorized,
	ErrMissingCredentials:  http.StatusInternalServerError,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusInternalServerError,
	ErrStorage:             http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP do código, 500 quando desconhecido
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Error:   message,
		Details: details,
	})
}

// WriteMissingCredentials responde 500 listando as variáveis de ambiente que faltam
func WriteMissingCredentials(w http.ResponseWriter, message string, required []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(ErrMissingCredentials))
	json.NewEncoder(w).Encode(map[string]any{
		"code":     ErrMissingCredentials,
		"error":    message,
		"required": required,
	})
}
