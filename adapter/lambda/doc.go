// Package lambda adapts a compiled route table to AWS Lambda behind
// API Gateway.
//
// The adapter translates APIGatewayProxyRequest events into canonical
// request values and back. Base64-encoded event bodies are decoded to raw
// bytes before entering the pipeline; base64 response bodies produced by
// the content-encoding filter pass through with the IsBase64Encoded flag
// set, which API Gateway decodes on the way to the client.
//
// The deployment stage and stage variables from the event's request
// context are published on the request's Env.
//
//	api := b.MustBuild()
//
//	func main() {
//		lambda.Start(api)
//	}
package lambda
