package dto

// PageArgs argumentos de paginación de una conexión GraphQL (first/after).
type PageArgs struct {
	First *int32
	After *string
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
