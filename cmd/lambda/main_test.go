package main

import (
	"alphalab/api"
	"alphalab/internal/util"
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func Test_lambdaHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLambdaHandler(&api.ApiHandler{
		Config: util.DefaultPipelineConfig(),
	})

	response, err := handler.Handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "GET",
		Path:       "/",
	})
	require.NoError(t, err)
	require.Equal(t, 200, response.StatusCode)
	require.Contains(t, response.Body, "welcome to alphalab")
}
