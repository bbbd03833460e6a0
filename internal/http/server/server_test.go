package server_test

import (
	"net/http"
	"time"

	"marketsync/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("reports ErrServerClosed after a shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NewServeMux(), "0")

		errChan := srv.Run()
		Expect(srv.Shutdown()).To(Succeed())

		Eventually(errChan, 2*time.Second).Should(Receive(MatchError(http.ErrServerClosed)))
	})
})
