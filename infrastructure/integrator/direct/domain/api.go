package directdomain

import (
	"fmt"
	"strings"
)

// Request é o envelope de todas as chamadas à API v5
type Request struct {
	Method string `json:"method"`
	Params any    `json:"params"`
}

// Response é o envelope de resposta: ou result ou error
type Response[T any] struct {
	Result *T        `json:"result,omitempty"`
	Error  *APIError `json:"error,omitempty"`
}

// APIError representa o objeto error devolvido pela API
type APIError struct {
	RequestID   string `json:"request_id"`
	ErrorCode   int    `json:"error_code"`
	ErrorString string `json:"error_string"`
	ErrorDetail string `json:"error_detail"`
}

func (e *APIError) Error() string {
	if e.ErrorDetail != "" {
		return fmt.Sprintf("%s: %s", e.ErrorString, e.ErrorDetail)
	}
	return e.ErrorString
}

// ExceptionNotification é um erro ou aviso de um item de uma operação em lote
type ExceptionNotification struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
	Details string `json:"Details,omitempty"`
}

func (n ExceptionNotification) String() string {
	if n.Details != "" {
		return fmt.Sprintf("%s (%s)", n.Message, n.Details)
	}
	return n.Message
}

type ActionResult struct {
	ID       int64                   `json:"Id,omitempty"`
	Warnings []ExceptionNotification `json:"Warnings,omitempty"`
	Errors   []ExceptionNotification `json:"Errors,omitempty"`
}

type AddResult struct {
	AddResults []ActionResult `json:"AddResults"`
}

type UpdateResult struct {
	UpdateResults []ActionResult `json:"UpdateResults"`
}

type ModerateResult struct {
	ModerateResults []ActionResult `json:"ModerateResults"`
}

// ItemErrors agrega os erros de itens de uma operação em lote
type ItemErrors struct {
	Notifications []ExceptionNotification
}

func (e *ItemErrors) Error() string {
	messages := make([]string, 0, len(e.Notifications))
	for _, n := range e.Notifications {
		messages = append(messages, n.String())
	}
	return strings.Join(messages, ", ")
}

// CollectErrors devolve nil quando nenhum item falhou
func CollectErrors(results []ActionResult) error {
	var notifications []ExceptionNotification
	for _, r := range results {
		notifications = append(notifications, r.Errors...)
	}
	if len(notifications) == 0 {
		return nil
	}
	return &ItemErrors{Notifications: notifications}
}

type IDsCriteria struct {
	IDs []int64 `json:"Ids"`
}
