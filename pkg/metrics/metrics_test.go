package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When applying them to a manager", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithMetricPrefix("prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(false),
				WithRefreshInterval(5*time.Second),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the manager should reflect them", func() {
				So(manager.namespace, ShouldEqual, "test_namespace")
				So(manager.subsystem, ShouldEqual, "test_subsystem")
				So(manager.histogramBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
				So(manager.Enabled(), ShouldBeFalse)
				So(manager.RefreshInterval(), ShouldEqual, 5*time.Second)
				So(manager.customLabels["env"], ShouldEqual, "test")
			})
		})

		Convey("When passing zero values", func() {
			manager := NewManager(
				WithNamespace(""),
				WithHistogramBuckets(nil),
				WithRefreshInterval(0),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "dnindex")
				So(manager.histogramBuckets, ShouldNotBeEmpty)
				So(manager.RefreshInterval(), ShouldEqual, DefaultRefreshInterval)
			})
		})
	})
}

func TestMetricsManagerRegistration(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry), WithMetricPrefix("p"))
		manager.companiesRanked.Set(3)

		Convey("Then the metrics should be gathered under the prefixed name", func() {
			families, err := registry.Gather()
			So(err, ShouldBeNil)

			names := make(map[string]bool)
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["dnindex_engine_p_companies_ranked"], ShouldBeTrue)
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording percent parse failures", func() {
			before := testutil.ToFloat64(globalManager.percentParseFailures)
			RecordPercentParseFailures(3)
			RecordPercentParseFailures(0)
			RecordPercentParseFailures(-2)

			Convey("Then only positive counts should be added", func() {
				So(testutil.ToFloat64(globalManager.percentParseFailures)-before, ShouldEqual, 3)
			})
		})

		Convey("When recording computations", func() {
			before := testutil.ToFloat64(globalManager.computations.WithLabelValues("three-pillar"))
			RecordComputation("three-pillar")
			RecordComputation("three-pillar")

			Convey("Then the counter should move per strategy", func() {
				So(testutil.ToFloat64(globalManager.computations.WithLabelValues("three-pillar"))-before, ShouldEqual, 2)
			})
		})

		Convey("When updating dataset gauges", func() {
			UpdateRecordsLoaded("initiatives", 120)
			UpdateCompaniesRanked(7)

			Convey("Then the gauges should hold the latest value", func() {
				So(testutil.ToFloat64(globalManager.recordsLoaded.WithLabelValues("initiatives")), ShouldEqual, 120)
				So(testutil.ToFloat64(globalManager.companiesRanked), ShouldEqual, 7)
			})
		})

		Convey("When recording the remaining metrics", func() {
			So(func() {
				RecordComputationLatency("indices", 1.5)
				RecordEmptyScope("indices")
				RecordRowsSkipped("composition", 2)
				RecordHTTPRequest("/indices", "GET", "200")
				RecordHTTPRequestDuration("/indices", "GET", "200", 4.0)
				RecordErrorByComponent("loader", "parse")
				RecordErrorByType("bad_request", "warning")
				RecordErrorByEndpoint("/indices", "GET", "bad_request")
				RecordErrorLatency("http", "bad_request", 1.0)
				UpdateSystemMemoryUsage(1024 * 1024)
				UpdateSystemGoroutineCount(10)
				RecordSystemGCPauseTime(0.5)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		Convey("Then it should expose the global manager metrics", func() {
			UpdateCompaniesRanked(1)
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(families, ShouldNotBeEmpty)
		})
	})
}

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure() })

	Convey("Given a configured global manager", t, func() {
		previous := GetRegistry()
		m := Configure(WithNamespace("dni"), WithMetricsEnabled(false), WithRefreshInterval(time.Second))

		Convey("Then it should replace the registry and honour the options", func() {
			So(GetRegistry(), ShouldNotPointTo, previous)
			So(m.Enabled(), ShouldBeFalse)
			So(m.RefreshInterval(), ShouldEqual, time.Second)

			before := testutil.ToFloat64(m.companiesRanked)
			UpdateCompaniesRanked(9)
			So(testutil.ToFloat64(m.companiesRanked), ShouldEqual, before)

			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			names := make(map[string]bool)
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["dni_engine_companies_ranked"], ShouldBeTrue)
		})
	})
}
