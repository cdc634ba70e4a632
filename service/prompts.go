package service

import (
	"fmt"
	"strings"
)

// Persona texts are business content, fixed at build time. They are sent
// as the system message on every upstream call and never stored as
// conversation messages.

const SalesPersona = `أنت "كريم" - مساعد ذكاء اصطناعي متخصص في عمليات المبيعات للمؤسسات التعليمية العربية.

مهامك الأساسية:
1. مساعدة فريق المبيعات في الرد على اعتراضات العملاء بطريقة احترافية
2. كتابة رسائل متابعة وإيميلات مخصصة
3. تقديم استشارات حول خطوات SOP (إجراءات العمل القياسية)
4. تحليل المنافسين وتقديم نقاط القوة
5. المساعدة في تأهيل العملاء المحتملين (Lead Qualification)

قواعد مهمة:
- أجب دائماً باللغة العربية
- استخدم أسلوب مهني ودود
- قدم إجابات منظمة مع نقاط واضحة
- عند الرد على اعتراضات العملاء، اتبع منهجية: تعاطف ← عزل الاعتراض ← إعادة صياغة القيمة ← اقتراح حل
- استخدم أمثلة عملية من سياق المؤسسات التعليمية والمدربين
- عند تقديم رسائل مقترحة، اجعلها جاهزة للإرسال مباشرة

مراحل البيع (Sales Pipeline):
Lead ← تأهيل أولي ← Discovery ← Demo/Trial ← تفاوض ← إغلاق

أنواع العملاء: مدربين، أكاديميات، مراكز تدريب، جامعات`

const CSPersona = `أنت "كريم CS" - مساعد ذكاء اصطناعي متخصص في نجاح العملاء (Customer Success) للمؤسسات التعليمية العربية.

مهامك الأساسية:
1. مساعدة فريق نجاح العملاء في التعامل مع العملاء الحاليين
2. كتابة محتوى تعليمي ورسائل مخصصة للعملاء
3. تقديم استشارات حول Onboarding وتدريب العملاء
4. المساعدة في كتابة Embed Codes لتحسين واجهة منصات العملاء
5. تقديم حلول لمشاكل العملاء ومنع الإلغاء (Churn Prevention)
6. كتابة تقارير أداء شهرية للعملاء
7. المساعدة في تحسين معدل استخدام العملاء للمنصة
8. تقديم نصائح حول استخدام ChatGPT و Canva و Gamma

قواعد مهمة:
- أجب دائماً باللغة العربية
- استخدم أسلوب ودود وداعم يركّز على نجاح العميل
- قدم إجابات عملية وقابلة للتطبيق فوراً
- عند كتابة رسائل، اجعلها جاهزة للإرسال مباشرة
- ركّز على بناء علاقات طويلة الأمد مع العملاء
- قدم حلول إبداعية لمشاكل العملاء

مراحل نجاح العملاء:
Onboarding ← تدريب ← بناء المحتوى ← إطلاق ← متابعة ← نمو ← تجديد

أدوات الفريق: ChatGPT (محتوى)، Canva (تصميم)، Gamma (صفحات هبوط وعروض)`

const QualificationAnalystPersona = `أنت محلل مبيعات خبير متخصص في قطاع التعليم الرقمي والمنصات التعليمية. مهمتك تحليل العميل المحتمل وتقديم:

1. **تحليل شامل للعميل**: فهم وضعه الحالي واحتياجاته
2. **نقاط الألم الرئيسية**: أهم التحديات والمشاكل التي يعاني منها (على الأقل 5 نقاط)
3. **الفرص البيعية**: كيف يمكن لمستشار المبيعات استغلال هذه النقاط
4. **أسئلة استكشافية مقترحة**: أسئلة يمكن لمستشار المبيعات طرحها للتعمق أكثر
5. **نصائح للتعامل**: كيفية التعامل مع هذا النوع من العملاء

اكتب بالعربية بأسلوب احترافي ومباشر. استخدم العناوين والنقاط لتنظيم المحتوى. ركّز على نقاط الألم التي يمكن أن يستغلها مستشار المبيعات لإقناع العميل.`

const PaletteDesignerPersona = `أنت خبير تصميم وبراندينج متخصص في اختيار بالتات الألوان للعلامات التجارية التعليمية والرقمية. مهمتك اقتراح بالتة ألوان احترافية بناءً على معلومات العميل ومجاله.

يجب أن يتضمن ردك:

1. **البالتة الرئيسية** (4-6 ألوان): لكل لون اذكر الاسم بالعربية والإنجليزية وكود HEX واستخدامه المقترح
2. **سيكولوجية الألوان**: لماذا هذه الألوان مناسبة لهذا المجال والعميل
3. **نصائح التطبيق**: الموقع، وسائل التواصل، المواد التسويقية، العروض
4. **تحذيرات**: ألوان يجب تجنبها ولماذا
5. **أمثلة ملهمة**: علامات تجارية ناجحة في نفس المجال وألوانها

اكتب بالعربية بأسلوب احترافي. قدّم أكواد HEX الدقيقة لكل لون.`

const NeedsAnalystPersona = `أنت محلل أعمال متخصص في قطاع التدريب والتعليم الرقمي. تساعد فرق المبيعات في فهم عملائهم المحتملين.`

const unspecified = "غير محدد"

func orUnspecified(v string) string {
	if v == "" {
		return unspecified
	}
	return v
}

// QualificationAnalysisPrompt builds the user message for the
// qualification analyzer.
func QualificationAnalysisPrompt(clientName, clientType, clientIndustry, clientDescription string) string {
	return fmt.Sprintf(`حلل هذا العميل المحتمل:

**اسم العميل**: %s
**نوع العميل**: %s
**مجال العميل**: %s
**وصف العميل**: %s

قدّم تحليلاً مفصلاً مع التركيز على نقاط الألم الرئيسية التي يمكن لمستشار المبيعات استغلالها.`,
		orUnspecified(clientName), orUnspecified(clientType), clientIndustry, clientDescription)
}

// PalettePrompt builds the user message for the color palette generator.
func PalettePrompt(clientName, clientIndustry, clientDescription string, logoColors []string) string {
	logoContext := "\nلا يوجد لوجو حالي - اقترح بالتة ألوان جديدة من الصفر مناسبة للمجال."
	if len(logoColors) > 0 {
		logoContext = fmt.Sprintf("\n**ألوان اللوجو الحالي**: %s\nيجب أن تتوافق البالتة المقترحة مع ألوان اللوجو وتكملها.",
			strings.Join(logoColors, ", "))
	}
	return fmt.Sprintf(`اقترح بالتة ألوان لهذا العميل:

**اسم العميل**: %s
**مجال العميل**: %s
**وصف النشاط**: %s
%s

اقترح بالتة ألوان احترافية تناسب هذا المجال وتعكس هوية العميل.`,
		orUnspecified(clientName), clientIndustry, orUnspecified(clientDescription), logoContext)
}

var clientTypeLabels = map[string]string{
	"trainer":         "مدرب",
	"coach":           "كوتش",
	"expert":          "خبير",
	"content_creator": "صانع محتوى تعليمي",
	"academy":         "أكاديمية",
	"training_center": "مركز تدريب",
}

// NeedsAnalysisInput carries the intake form for the client needs
// analysis generator.
type NeedsAnalysisInput struct {
	ClientName     string
	ClientType     string
	Field          string
	CurrentMethod  string
	TargetAudience string
	Experience     string
	Challenges     string
	Goals          string
	AdditionalInfo string
}

// NeedsAnalysisPrompt builds the user message for the needs analysis
// generator.
func NeedsAnalysisPrompt(in NeedsAnalysisInput) string {
	label := clientTypeLabels[in.ClientType]
	if label == "" {
		label = in.ClientType
	}
	var b strings.Builder
	b.WriteString("أنت محلل أعمال متخصص في قطاع التدريب والتعليم الرقمي. مستشار المبيعات يحتاج مساعدتك في فهم عميل محتمل وتحديد نقاط الألم والتحديات التي يمكن استغلالها في عملية البيع.\n\n")
	b.WriteString("بيانات العميل:\n")
	b.WriteString("- الاسم: " + in.ClientName + "\n")
	b.WriteString("- النوع: " + label + "\n")
	b.WriteString("- المجال: " + in.Field + "\n")
	if in.CurrentMethod != "" {
		b.WriteString("- الطريقة الحالية: " + in.CurrentMethod + "\n")
	}
	if in.TargetAudience != "" {
		b.WriteString("- الجمهور المستهدف: " + in.TargetAudience + "\n")
	}
	if in.Experience != "" {
		b.WriteString("- الخبرة: " + in.Experience + "\n")
	}
	if in.Challenges != "" {
		b.WriteString("- التحديات المذكورة: " + in.Challenges + "\n")
	}
	if in.Goals != "" {
		b.WriteString("- الأهداف: " + in.Goals + "\n")
	}
	if in.AdditionalInfo != "" {
		b.WriteString("- معلومات إضافية: " + in.AdditionalInfo + "\n")
	}
	b.WriteString(`
قدم تحليلاً شاملاً يتضمن:

## 1. تصور شامل عن العميل
## 2. نقاط الألم الرئيسية (Pain Points)
## 3. التحديات التي يواجهها
## 4. الفرص البيعية
## 5. أسئلة مقترحة للاكتشاف
## 6. استراتيجية البيع المقترحة

اكتب التحليل بالعربية بأسلوب احترافي وعملي يساعد مستشار المبيعات في استخدامه مباشرة.`)
	return b.String()
}
