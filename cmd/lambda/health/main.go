// Health Check Lambda entry point
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"guardian-eye-api/internal/bootstrap"
	"guardian-eye-api/internal/handlers"
	"guardian-eye-api/internal/utils"
)

func main() {
	rt, err := bootstrap.Init()
	if err != nil {
		panic("Failed to initialize: " + err.Error())
	}
	defer utils.Sync()

	// Start Lambda
	lambda.Start(handlers.NewHealthHandler(rt.DB).Handle)
}
