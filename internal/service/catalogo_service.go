package service

import (
	"context"
	"strings"

	"finca/internal/dto"
	"finca/internal/model"
	"finca/internal/repository"
)

// CatalogoService manages the product and labor pick lists.
type CatalogoService interface {
	ListarProductos(ctx context.Context, owner string) ([]dto.CatalogoItemResponse, error)
	AgregarProducto(ctx context.Context, owner string, req dto.CatalogoRequest) (*dto.CatalogoItemResponse, error)
	EliminarProducto(ctx context.Context, owner string, id uint) error
	ListarLabores(ctx context.Context, owner string) ([]dto.CatalogoItemResponse, error)
	AgregarLabor(ctx context.Context, owner string, req dto.CatalogoRequest) (*dto.CatalogoItemResponse, error)
	EliminarLabor(ctx context.Context, owner string, id uint) error
}

type catalogoService struct {
	repo repository.CatalogoRepository
}

func NewCatalogoService(repo repository.CatalogoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func (s *catalogoService) ListarProductos(ctx context.Context, owner string) ([]dto.CatalogoItemResponse, error) {
	rows, err := s.repo.ListProductos(ctx, owner)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CatalogoItemResponse, len(rows))
	for i, r := range rows {
		resp[i] = dto.CatalogoItemResponse{ID: r.ID, Nombre: r.Nombre}
	}
	return resp, nil
}

func (s *catalogoService) AgregarProducto(ctx context.Context, owner string, req dto.CatalogoRequest) (*dto.CatalogoItemResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, invalido("el nombre del producto es obligatorio")
	}
	p := &model.CatalogoProducto{Owner: owner, Nombre: nombre}
	if err := s.repo.CreateProducto(ctx, p); err != nil {
		return nil, duplicado(err, "el producto ya está en el catálogo")
	}
	return &dto.CatalogoItemResponse{ID: p.ID, Nombre: p.Nombre}, nil
}

func (s *catalogoService) EliminarProducto(ctx context.Context, owner string, id uint) error {
	return noEncontrado(s.repo.DeleteProducto(ctx, owner, id), "producto no encontrado")
}

func (s *catalogoService) ListarLabores(ctx context.Context, owner string) ([]dto.CatalogoItemResponse, error) {
	rows, err := s.repo.ListLabores(ctx, owner)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CatalogoItemResponse, len(rows))
	for i, r := range rows {
		resp[i] = dto.CatalogoItemResponse{ID: r.ID, Nombre: r.Nombre}
	}
	return resp, nil
}

func (s *catalogoService) AgregarLabor(ctx context.Context, owner string, req dto.CatalogoRequest) (*dto.CatalogoItemResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, invalido("el nombre de la labor es obligatorio")
	}
	l := &model.CatalogoLabor{Owner: owner, Nombre: nombre}
	if err := s.repo.CreateLabor(ctx, l); err != nil {
		return nil, duplicado(err, "la labor ya está en el catálogo")
	}
	return &dto.CatalogoItemResponse{ID: l.ID, Nombre: l.Nombre}, nil
}

func (s *catalogoService) EliminarLabor(ctx context.Context, owner string, id uint) error {
	return noEncontrado(s.repo.DeleteLabor(ctx, owner, id), "labor no encontrada")
}
