package docs

// docs.go is produced by swag from the annotations on cmd/app/main.go and the
// HTTP handlers in internal/adapters/in/http.
//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.4 init --dir ../../.. --generalInfo cmd/app/main.go --output . --outputTypes go --parseInternal
