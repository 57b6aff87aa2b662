package middleware

import (
	"context"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
)

type stubController struct {
	ports.SessionController
	user *domain.Consultant
}

func (s *stubController) CurrentUser() *domain.Consultant { return s.user }

func (s *stubController) View() ports.SessionView { return ports.SessionView{} }

func (s *stubController) Start(context.Context, string) ports.SessionView { return s.View() }

type stubRegistry struct {
	clients map[string]ports.SessionController
}

func (r *stubRegistry) Create() (string, ports.SessionController) {
	ctrl := &stubController{}
	r.clients["new"] = ctrl
	return "new", ctrl
}

func (r *stubRegistry) Get(id string) (ports.SessionController, error) {
	if ctrl, ok := r.clients[id]; ok {
		return ctrl, nil
	}
	return nil, domain.ErrUnknownClient
}

func (r *stubRegistry) Remove(id string) { delete(r.clients, id) }
