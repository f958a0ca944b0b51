package ectx

import "context"

type apiKeyContextType string

var (
	apiKeyCtxKey apiKeyContextType = "apiKey"
)

// GetAPIKeyFromCtx 取出接入方请求里面携带的 API Key
func GetAPIKeyFromCtx(ctx context.Context) (string, bool) {
	val := ctx.Value(apiKeyCtxKey)
	if val == nil {
		return "", false
	}
	v, ok := val.(string)
	return v, ok && v != ""
}

func CtxWithAPIKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, apiKeyCtxKey, key)
}
