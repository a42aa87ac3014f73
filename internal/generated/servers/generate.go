package servers

// server.gen.go is produced from api/openapi.yml; swagger.go is maintained by hand.
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config oapi-codegen.yml ../../../api/openapi.yml
