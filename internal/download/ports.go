package download

import (
	"context"

	"marketsync/internal/gateway"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AssetResolver . AssetResolver
type AssetResolver interface {
	Resolve(ctx context.Context, uri string) (*gateway.Asset, error)
}

//counterfeiter:generate -o fake -fake-name FilenameLookup . FilenameLookup
type FilenameLookup interface {
	OriginalFilename(ctx context.Context, cid string) (string, error)
}
