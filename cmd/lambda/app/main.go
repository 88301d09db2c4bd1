// Application pass-through Lambda entry point
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"guardian-eye-api/internal/application"
	"guardian-eye-api/internal/bootstrap"
	"guardian-eye-api/internal/handlers"
	"guardian-eye-api/internal/utils"
)

func main() {
	if _, err := bootstrap.Init(); err != nil {
		panic("Failed to initialize: " + err.Error())
	}
	defer utils.Sync()

	app, err := application.Entrypoint()
	if err != nil {
		panic("Failed to resolve application entry point: " + err.Error())
	}

	// Start Lambda
	lambda.Start(handlers.NewAppHandler(app).Handle)
}
