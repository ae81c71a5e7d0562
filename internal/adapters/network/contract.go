package network

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/temanbulus/nfa-cli/internal/domain"
	"github.com/temanbulus/nfa-cli/internal/ports"
)

// AdoptionGasLimit is attached to every pet contract submission.
const AdoptionGasLimit = 300000

const petContractABI = `[
	{"type":"function","name":"adoptPetSoulbound","stateMutability":"payable",
	 "inputs":[{"name":"petId","type":"string"},{"name":"name","type":"string"},{"name":"petType","type":"string"},{"name":"emoji","type":"string"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"makeConfidentialDonation","stateMutability":"payable",
	 "inputs":[{"name":"petId","type":"string"},{"name":"encryptedAmount","type":"bytes"},{"name":"encryptedIdentity","type":"bytes"},{"name":"hideAmount","type":"bool"},{"name":"hideIdentity","type":"bool"}],
	 "outputs":[]},
	{"type":"function","name":"getAdoptedPets","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"}],
	 "outputs":[{"name":"","type":"tuple[]","components":[
		{"name":"petId","type":"string"},{"name":"name","type":"string"},{"name":"petType","type":"string"},
		{"name":"emoji","type":"string"},{"name":"tokenId","type":"uint256"},{"name":"adoptedAt","type":"uint256"}]}]},
	{"type":"event","name":"PetAdopted","anonymous":false,
	 "inputs":[{"name":"owner","type":"address","indexed":true},{"name":"petId","type":"string","indexed":false},{"name":"tokenId","type":"uint256","indexed":true}]}
]`

var errMalformedAdoptionLog = errors.New("malformed PetAdopted log")

// adoptedPet mirrors one getAdoptedPets tuple.
type adoptedPet struct {
	PetId     string
	Name      string
	PetType   string
	Emoji     string
	TokenId   *big.Int
	AdoptedAt *big.Int
}

type petContract struct {
	address common.Address
	abi     abi.ABI
}

func newPetContract(address string) (*petContract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid pet contract address %q", address)
	}

	parsed, err := abi.JSON(strings.NewReader(petContractABI))
	if err != nil {
		return nil, fmt.Errorf("parse pet contract abi: %w", err)
	}

	return &petContract{address: common.HexToAddress(address), abi: parsed}, nil
}

func (c *petContract) packAdopt(intent domain.AdoptionIntent) ([]byte, error) {
	return c.abi.Pack("adoptPetSoulbound", string(intent.EntityID), intent.DisplayName, intent.Category, intent.Glyph())
}

func (c *petContract) packDonate(petID domain.EntityID, amount, identity []byte, hideAmount, hideIdentity bool) ([]byte, error) {
	return c.abi.Pack("makeConfidentialDonation", string(petID), amount, identity, hideAmount, hideIdentity)
}

func (c *petContract) packAdoptedPets(owner common.Address) ([]byte, error) {
	return c.abi.Pack("getAdoptedPets", owner)
}

func (c *petContract) unpackAdoptedPets(data []byte) ([]domain.OwnedEntity, error) {
	out, err := c.abi.Unpack("getAdoptedPets", data)
	if err != nil {
		return nil, fmt.Errorf("unpack adopted pets: %w", err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("unpack adopted pets: expected 1 output, got %d", len(out))
	}

	pets := *abi.ConvertType(out[0], new([]adoptedPet)).(*[]adoptedPet)
	entities := make([]domain.OwnedEntity, 0, len(pets))
	for _, pet := range pets {
		entities = append(entities, pet.entity())
	}
	return entities, nil
}

// adoptionTokenID finds the PetAdopted log emitted by this contract.
func (c *petContract) adoptionTokenID(receipt ports.Receipt) (string, bool, error) {
	event := c.abi.Events["PetAdopted"]
	for _, log := range receipt.Logs {
		if !common.IsHexAddress(log.Address) || common.HexToAddress(log.Address) != c.address {
			continue
		}
		if len(log.Topics) == 0 || common.HexToHash(log.Topics[0]) != event.ID {
			continue
		}
		if len(log.Topics) < 3 {
			return "", false, fmt.Errorf("%w: %d topics", errMalformedAdoptionLog, len(log.Topics))
		}

		tokenID := common.HexToHash(log.Topics[2]).Big()
		return tokenID.String(), true, nil
	}

	return "", false, nil
}

func (p adoptedPet) entity() domain.OwnedEntity {
	entity := domain.OwnedEntity{
		ID:          domain.EntityID(p.PetId),
		DisplayName: p.Name,
		Category:    p.PetType,
		IconGlyph:   p.Emoji,
		Phase:       domain.PhaseConfirmed,
	}
	if strings.TrimSpace(entity.IconGlyph) == "" {
		entity.IconGlyph = domain.DefaultGlyph(p.PetType)
	}
	if p.TokenId != nil {
		token := p.TokenId.String()
		entity.TokenReference = &token
	}
	if p.AdoptedAt != nil && p.AdoptedAt.IsInt64() {
		entity.AcquiredAt = time.Unix(p.AdoptedAt.Int64(), 0).UTC()
	}
	return entity
}
