package google

import "fmt"

// ProviderError é uma resposta não-200 do Google
type ProviderError struct {
	Step       string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("google %s: status %d: %s", e.Step, e.StatusCode, e.Body)
}

// NetworkError indica falha de transporte ao falar com o Google
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
