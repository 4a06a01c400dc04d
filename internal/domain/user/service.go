package user

import "context"

type SellerService interface {
	Create(ctx context.Context, req CreateSellerRequest) (*SellerResponse, error)
	GetByID(ctx context.Context, id string) (*SellerResponse, error)
	List(ctx context.Context, filter ListFilter) (*ListSellersResponse, error)
	Update(ctx context.Context, req UpdateSellerRequest) (*SellerResponse, error)
	// Delete removes the account together with every image file it owns.
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*SellerStatsResponse, error)
}
