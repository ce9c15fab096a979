package api

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	SuccessfulRequests *prometheus.CounterVec
	BadRequests        *prometheus.CounterVec
	SignIns            *prometheus.CounterVec
	SignUps            *prometheus.CounterVec
	PostsCreated       *prometheus.CounterVec
	CommentsAdded      *prometheus.CounterVec
	LikesRecorded      *prometheus.CounterVec
}

func InitMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SuccessfulRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_request",
				Help: "Total number of successful (2xx) HTTP requests",
			},
			[]string{"path"},
		),
		BadRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unsuccessful_request",
				Help: "Total number of unsuccessful (4xx) HTTP requests",
			},
			[]string{"path"},
		),
		SignIns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_sign_in",
				Help: "Total number of successful sign-ins",
			},
			[]string{"path"},
		),
		SignUps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_sign_up",
				Help: "Total number of successful sign-ups",
			},
			[]string{"path"},
		),
		PostsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_post",
				Help: "Total number of successfully created posts",
			},
			[]string{"path"},
		),
		CommentsAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_comment",
				Help: "Total number of successfully added comments",
			},
			[]string{"path"},
		),
		LikesRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_like",
				Help: "Total number of successfully recorded likes",
			},
			[]string{"path"},
		),
	}

	reg.MustRegister(m.SuccessfulRequests)
	reg.MustRegister(m.BadRequests)
	reg.MustRegister(m.SignIns)
	reg.MustRegister(m.SignUps)
	reg.MustRegister(m.PostsCreated)
	reg.MustRegister(m.CommentsAdded)
	reg.MustRegister(m.LikesRecorded)

	return m
}
