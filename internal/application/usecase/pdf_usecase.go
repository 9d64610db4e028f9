package usecase

import (
	"context"
	"fmt"

	"github.com/dcherreria/taller-api/internal/domain"
	"github.com/dcherreria/taller-api/internal/domain/entity"
	"github.com/dcherreria/taller-api/internal/domain/repository"
)

// TallerInfo membrete del taller que encabeza el documento imprimible.
type TallerInfo struct {
	Nombre   string
	Telefono string
	Ciudad   string
}

// PresupuestoPDFGenerator puerto para la composición del documento imprimible.
type PresupuestoPDFGenerator interface {
	GenerarPresupuestoPDF(ctx context.Context, p *entity.Presupuesto, taller TallerInfo) ([]byte, error)
}

// PDFUseCase genera el documento descargable del presupuesto. Es una
// transformación pura de lo ya persistido: no toca estado.
type PDFUseCase struct {
	repo      repository.PresupuestoRepository
	generator PresupuestoPDFGenerator
	taller    TallerInfo
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(repo repository.PresupuestoRepository, generator PresupuestoPDFGenerator, taller TallerInfo) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator, taller: taller}
}

// DescargarPresupuestoPDF carga el registro y compone el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien; el filename es determinístico
//     a partir del nombre del cliente: "Presupuesto-<cliente>.pdf".
//   - domain.ErrNotFound si el presupuesto no existe.
func (uc *PDFUseCase) DescargarPresupuestoPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener presupuesto: %w", err)
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerarPresupuestoPDF(ctx, p, uc.taller)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("Presupuesto-%s.pdf", p.Cliente)
	return pdfBytes, filename, nil
}
