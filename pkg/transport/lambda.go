package transport

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/kcaldas/genie-skill/pkg/skill"
)

// LambdaHandler adapts the invoker to the signature lambda.Start expects
func LambdaHandler(invoker Invoker) func(ctx context.Context, envelope skill.RequestEnvelope) (*skill.ResponseEnvelope, error) {
	return func(ctx context.Context, envelope skill.RequestEnvelope) (*skill.ResponseEnvelope, error) {
		return invoker.Invoke(ctx, &envelope)
	}
}

// StartLambda hands control to the Lambda runtime. It does not return.
func StartLambda(invoker Invoker) {
	lambda.Start(LambdaHandler(invoker))
}
