package assistant

import (
	"fmt"
	"net/http"

	"github.com/BlueSkyGuardian/tabibapp/llm"
)

// User-facing failure notices. The consultation audience is Moroccan, so
// transport failures are reported in Arabic like the rest of the product.
const (
	noticeInvalidKey    = "مفتاح API غير صالح أو منتهي الصلاحية"
	noticeRateLimited   = "تم تجاوز حد الطلبات. يرجى المحاولة لاحقاً"
	noticeUpstreamError = "خطأ في خادم OpenAI. يرجى المحاولة لاحقاً"
	noticeFinalFailed   = "فشل في الحصول على الرد النهائي من الخدمة"
)

// classifyModelError maps a first-phase provider failure to a patient-facing
// notice. The second phase deliberately reports the generic notice instead,
// since by then the search already ran and a detailed status is of no use to
// the patient.
func classifyModelError(err error) string {
	switch status := llm.StatusCode(err); {
	case status == http.StatusUnauthorized:
		return noticeInvalidKey
	case status == http.StatusTooManyRequests:
		return noticeRateLimited
	case status >= http.StatusInternalServerError:
		return noticeUpstreamError
	default:
		return fmt.Sprintf("فشل في الاتصال بالخدمة: %d", status)
	}
}
