package main

// @title           Confeitaria Orçamentos API
// @version         1.0
// @description     API de catálogo, precificação e orçamentos da confeitaria

// @contact.name   Suporte
// @contact.email  suporte@confeitaria.local

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
