//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package profile

import "context"

type DBRepo interface {
	UpdateProfileIdentity(ctx context.Context, userID, fullName, avatarURL string) error
}
