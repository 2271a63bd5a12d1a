package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID devolve um sufixo alfanumérico curto, usado nos nomes de relatório enviados ao Direct
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
