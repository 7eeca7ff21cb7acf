package service

import (
	"github.com/MKhiriev/go-seal-doc/internal/adapter"
	"github.com/MKhiriev/go-seal-doc/internal/crypto"
	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/validators"
)

type ClientServices struct {
	DocumentService ClientDocumentService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, documentCrypto crypto.DocumentCrypto, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		DocumentService: NewClientDocumentService(serverAdapter, documentCrypto, validators.NewDocumentValidator(), logger),
	}
}
