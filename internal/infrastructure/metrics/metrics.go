package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "confeitaria"

// Metrics agrupa os coletores da aplicação em um registry próprio.
// Um *Metrics nil é aceito por todos os métodos e não registra nada.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	rejections     *prometheus.CounterVec
	quotes         *prometheus.CounterVec
	budgetsCreated prometheus.Counter
	ordersCreated  prometheus.Counter
}

// New cria o registry com os coletores HTTP, de domínio e do runtime Go
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Requisições HTTP em andamento.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pricing",
			Name:      "rejections_total",
			Help:      "Rejeições de validação do motor de preços por tipo.",
		}, []string{"kind"}),
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pricing",
			Name:      "items_total",
			Help:      "Itens precificados por modo de composição.",
		}, []string{"mode"}),
		budgetsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "budgets",
			Name:      "created_total",
			Help:      "Orçamentos gravados.",
		}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Pedidos gerados a partir de orçamentos aprovados.",
		}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.rejections,
		m.quotes,
		m.budgetsCreated,
		m.ordersCreated,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Registry expõe o registry, usado nos testes
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler retorna o handler HTTP que expõe as métricas registradas
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware mede as requisições usando a rota do gin como rótulo
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Rejection conta uma rejeição do motor de preços
func (m *Metrics) Rejection(kind string) {
	if m == nil || kind == "" {
		return
	}
	m.rejections.WithLabelValues(kind).Inc()
}

// ItemPriced conta um item precificado
func (m *Metrics) ItemPriced(mode string) {
	if m == nil {
		return
	}
	m.quotes.WithLabelValues(mode).Inc()
}

// BudgetCreated conta um orçamento gravado
func (m *Metrics) BudgetCreated() {
	if m == nil {
		return
	}
	m.budgetsCreated.Inc()
}

// OrderCreated conta um pedido gerado
func (m *Metrics) OrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}
