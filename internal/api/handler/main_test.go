package handler

import (
	"os"
	"testing"

	"github.com/vfg2006/seller-console/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}
