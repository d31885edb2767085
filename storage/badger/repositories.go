package badger

import "github.com/pasvio/vitrina/storage"

// NewRepositories creates on-disk product and FAQ repositories at path.
// Returns productRepo, faqRepo, backend, and error.
// Caller must close both repos and backend when done.
func NewRepositories(path string) (storage.ProductRepository, storage.FAQRepository, *Backend, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, nil, nil, err
	}

	productRepo, err := NewProductRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	faqRepo, err := NewFAQRepository(backend)
	if err != nil {
		productRepo.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return productRepo, faqRepo, backend, nil
}
