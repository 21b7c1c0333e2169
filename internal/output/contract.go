package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	sferrors "github.com/chenzhuyu2004/solarforest/internal/errors"
	"github.com/chenzhuyu2004/solarforest/pkg"
)

type ErrorResponse struct {
	SchemaVersion string `json:"schema_version"`
	Error         string `json:"error"`
	Code          int    `json:"code"`
}

// HandleExit 按输出模式打印错误并以对应退出码结束进程。
// 报告走 stdout,错误信封走 stderr,两者互不混写。
func HandleExit(err error, asJSON bool) {
	if err == nil {
		os.Exit(sferrors.Success)
	}

	code := sferrors.GetCode(err)
	writeError(os.Stderr, err, code, asJSON)
	os.Exit(code)
}

func writeError(w io.Writer, err error, code int, asJSON bool) {
	if !asJSON {
		fmt.Fprintln(w, err.Error())
		return
	}

	resp := ErrorResponse{
		SchemaVersion: pkg.JSONSchemaVersion,
		Error:         err.Error(),
		Code:          code,
	}
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		fmt.Fprintln(w, err.Error())
	}
}
