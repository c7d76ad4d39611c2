package usecase

import "context"

type autoriaKey struct{}

// Autoria identifies who triggered an operation. API handlers attach it to
// the request context; history rows carry it for audit.
type Autoria struct {
	IP        string
	UserAgent string
}

// ComAutoria returns ctx carrying the caller identity.
func ComAutoria(ctx context.Context, ip, userAgent string) context.Context {
	return context.WithValue(ctx, autoriaKey{}, Autoria{IP: ip, UserAgent: userAgent})
}

func autoriaDe(ctx context.Context) Autoria {
	a, _ := ctx.Value(autoriaKey{}).(Autoria)
	return a
}
