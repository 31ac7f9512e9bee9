package tracing

import (
	"io"
	"os"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/rub-converter/internal/logger"
)

const (
	agentHostEnv = "JAEGER_AGENT_HOST"
	endpointEnv  = "JAEGER_ENDPOINT"
)

// Init installs the global jaeger tracer configured from JAEGER_* env.
// Without an agent host or collector endpoint the tracer is a no-op.
func Init(serviceName string) (io.Closer, error) {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "jaeger config from env")
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = serviceName
	}
	if os.Getenv(agentHostEnv) == "" && os.Getenv(endpointEnv) == "" {
		cfg.Disabled = true
	}
	if cfg.Sampler == nil {
		cfg.Sampler = &jaegercfg.SamplerConfig{}
	}
	if cfg.Sampler.Type == "" {
		cfg.Sampler.Type = jaeger.SamplerTypeConst
		cfg.Sampler.Param = 1
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "cannot init tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing initialized",
		zap.String("service", cfg.ServiceName),
		zap.Bool("disabled", cfg.Disabled))
	return closer, nil
}
