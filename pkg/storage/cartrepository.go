package storage

import (
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
)

const cartSlot = "cart"

// CartRepository serializes the full cart into one storage slot on every
// save, mirroring how the browser storefront kept it in local storage.
type CartRepository struct {
	kv KeyValue
}

func NewCartRepository(kv KeyValue) *CartRepository {
	return &CartRepository{kv: kv}
}

func (r *CartRepository) Load() ([]model.CartItem, error) {
	raw, ok, err := r.kv.Get(cartSlot)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	if !ok {
		return nil, nil
	}

	var items []model.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// An unparsable blob is an empty cart, never a fatal error.
		log.WithError(err).Warn("stored cart is unparsable, starting empty")
		return nil, nil
	}
	return items, nil
}

func (r *CartRepository) Save(items []model.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "encode cart")
	}
	return errors.Wrap(r.kv.Set(cartSlot, raw), "save cart")
}
