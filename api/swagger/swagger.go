package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "HR Panel API",
        "description": "Personnel and task management service",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Employees", "description": "Personnel roster management"},
        {"name": "Tasks", "description": "Work item tracking with soft delete"}
    ],
    "paths": {
        "/employees/get-all": {
            "get": {
                "tags": ["Employees"],
                "summary": "List employees",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/employees/get-by-id/{id}": {
            "get": {
                "tags": ["Employees"],
                "summary": "Get employee",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/employees/create": {
            "post": {
                "tags": ["Employees"],
                "summary": "Create employee",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEmployeeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Duplicate email or mobile", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/employees/update": {
            "put": {
                "tags": ["Employees"],
                "summary": "Update employee (partial; absent fields stay unchanged)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateEmployeeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/employees/delete/{id}": {
            "delete": {
                "tags": ["Employees"],
                "summary": "Delete employee permanently",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/employees/export": {
            "get": {
                "tags": ["Employees"],
                "summary": "Export employee roster",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks (soft-deleted excluded)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create task",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get task",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update task (full overwrite)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete task (soft)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateEmployeeRequest": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string", "maxLength": 60},
                "last_name": {"type": "string", "maxLength": 60},
                "gender": {"type": "integer", "enum": [1, 2, 3]},
                "mobile_number": {"type": "string", "pattern": "^\\d{11}$"},
                "birth_date": {"type": "string", "pattern": "^\\d{4}/\\d{2}/\\d{2}$"},
                "education_level": {"type": "integer", "enum": [1, 2, 3, 4, 5, 6]},
                "field_of_study": {"type": "string", "maxLength": 100},
                "position": {"type": "string", "maxLength": 80},
                "email": {"type": "string", "maxLength": 150},
                "description": {"type": "string", "maxLength": 500}
            },
            "required": ["first_name", "last_name", "gender", "mobile_number", "education_level", "position", "email"]
        },
        "UpdateEmployeeRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "gender": {"type": "integer"},
                "mobile_number": {"type": "string"},
                "birth_date": {"type": "string"},
                "education_level": {"type": "integer"},
                "field_of_study": {"type": "string"},
                "position": {"type": "string"},
                "email": {"type": "string"},
                "is_active": {"type": "boolean"},
                "description": {"type": "string"}
            },
            "required": ["id"]
        },
        "TaskRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 150},
                "description": {"type": "string", "maxLength": 500},
                "status": {"type": "string"},
                "priority": {"type": "string"},
                "due_date": {"type": "string", "pattern": "^\\d{4}/\\d{2}/\\d{2}$"}
            },
            "required": ["title", "due_date"]
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "object"},
                "statusCode": {"type": "integer"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
