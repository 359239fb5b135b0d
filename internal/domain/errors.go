package domain

import "errors"

var (
	ErrBancoNaoSuportado = errors.New("banco não suportado")
	ErrTamanhoInvalido   = errors.New("tamanho de campo inválido")
	ErrDigitosInvalidos  = errors.New("campo contém caracteres não numéricos")
	ErrDigitoVerificador = errors.New("dígito verificador não confere")
	ErrConvenioInvalido  = errors.New("Convênio deve ter 6 ou 7 dígitos")
	ErrDataInvalida      = errors.New("data inválida")
	ErrRetornoInvalido   = errors.New("arquivo de retorno inválido")
)
