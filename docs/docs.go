// Package docs registers the swagger document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/turmas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["turmas"],
                "summary": "Lista as turmas cadastradas",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["turmas"],
                "summary": "Cadastra uma turma (atributos livres)",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/turmas/{turma_id}/alunos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["alunos"],
                "summary": "Lista os alunos de uma turma",
                "parameters": [{"type": "string", "name": "turma_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/alunos": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["alunos"],
                "summary": "Cadastra um aluno",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/alunos/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["alunos"],
                "summary": "Atualiza campos de um aluno (parcial)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/chamada": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chamada"],
                "summary": "Salva (ou sobrescreve) a chamada de uma turma no dia",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/chamada/verificar": {
            "get": {
                "produces": ["application/json"],
                "tags": ["chamada"],
                "summary": "Verifica se ja existe chamada para turma e data",
                "parameters": [
                    {"type": "string", "name": "turma_id", "in": "query", "required": true},
                    {"type": "string", "name": "data", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/relatorios": {
            "get": {
                "produces": ["application/json"],
                "tags": ["relatorios"],
                "summary": "Lista os relatorios de aula, mais recentes primeiro",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/relatorios/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["relatorios"],
                "summary": "Exclui um relatorio de aula",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/financeiro/resumo": {
            "get": {
                "produces": ["application/json"],
                "tags": ["financeiro"],
                "summary": "Resumo das ofertas agrupadas por trimestre",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EBD backend",
	Description:      "Chamada e financeiro da Escola Biblica Dominical",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
