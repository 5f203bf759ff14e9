package api

import (
	"github.com/burenotti/go_fitness_tracker/internal/app/tracker"
	"log/slog"
	"net"
	"strconv"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func Tracker(service *tracker.Service) Option {
	return func(s *Server) {
		s.tracker = service
	}
}

func Totals(totals *tracker.Totals) Option {
	return func(s *Server) {
		s.totals = totals
	}
}
