package classifier

// Canned replies, written in Algerian dialect. These stand in for the
// RAG service until it is wired up.

const greetingResponse = `أهلاً وسهلاً بيك! 🌟

أنا أمل، مساعدك الشخصي للدعم النفسي والوقاية من المخدرات. موجود هنا باش نساعدك ونسمعك بكل سرية واحترام.

كيفاش نقدر نساعدك اليوم؟ تقدر تحكيلي على:
• أي ضغط نفسي أو قلق تحس بيه
• معلومات على الوقاية من المخدرات
• كيفاش تساعد شخص قريب منك
• مراكز الدعم في الجزائر

تذكر: كل كلامك معايا محمي بسرية تامة. 🔒`

const stressResponse = `نفهمك ونحس بيك. الضغط النفسي والقلق حاجة طبيعية، وما تخافش، راك ماشي وحدك. 💚

**بعض النصائح اللي تنجم تساعدك:**

1. **تنفس عميق**: خذ نفس عميق من أنفك لمدة 4 ثواني، احبسو 4 ثواني، وطلعو من فمك 6 ثواني. كرر هذا 5 مرات.

2. **تكلم مع حد تثق فيه**: ما تخليش الأفكار تتراكم. الكلام يخفف.

3. **نشاط بدني**: حتى مشي 15 دقيقة يقدر يحسن مزاجك.

4. **نوم كافي**: حاول تنام 7-8 ساعات كل ليلة.

إذا حسيت أن الضغط كبير برشا، ما تترددش تتصل بالخط الأخضر: **3033** (مجاني ومتاح 24/7)

حاب نحكيو أكثر على الموضوع؟`

const drugsResponse = `موضوع مهم برشا، وشجاع منك أنك تسأل. 💪

**حقائق مهمة على المخدرات:**

• **الإدمان مرض**: مش ضعف أو نقص في الإرادة. يقدر يصيب أي واحد.

• **التعافي ممكن**: آلاف الناس في الجزائر تعافوا ورجعوا لحياة طبيعية.

• **الوقاية أسهل من العلاج**: فهم المخاطر والضغوطات يساعد في الحماية.

**علامات التحذير:**
- تغيير مفاجئ في السلوك
- إهمال المسؤوليات
- مشاكل مالية غير مبررة
- عزلة اجتماعية

**للمساعدة الفورية:**
📞 الخط الأخضر: **3033**
🏥 مراكز علاج الإدمان متوفرة في كل ولايات الجزائر

عندك سؤال محدد حاب نجاوبوك عليه؟`

const friendResponse = `يشرفك أنك تهتم بصاحبك. هذا دليل على قلب كبير. ❤️

**كيفاش تساعد شخص قريب منك:**

1. **اسمعو بدون حكم**: خليه يحس أنك موجود ليه بدون ما تنتقدو.

2. **عبر على قلقك بلطف**: قولو "أنا قلقان عليك وحاب نساعدك" بدلاً من "راك غالط".

3. **اقترح المساعدة المهنية**: قولو على الخط الأخضر 3033 أو مراكز الدعم.

4. **ما تحاولش تحل المشكلة وحدك**: الإدمان يحتاج متخصصين.

5. **احمي نفسك**: ما تخليش مشاكلو تأثر على صحتك النفسية.

**مهم:** ما تقدرش تجبر حد يتعالج. يلزم يكون هو مستعد.

حاب نحكيو أكثر على الموضوع؟`

const preventionResponse = `الوقاية هي أحسن استثمار في صحتك! 🛡️

**استراتيجيات الوقاية:**

**1. بناء مهارات الحياة:**
- تعلم كيفاش تتعامل مع الضغط
- طور ثقتك في نفسك
- تعلم قول "لا" بثقة

**2. بيئة صحية:**
- احط روحك مع ناس إيجابيين
- ابعد على الأماكن والمواقف الخطيرة
- شارك في أنشطة رياضية وثقافية

**3. معرفة المخاطر:**
- فهم أضرار المخدرات على الجسم والعقل
- اعرف علامات التحذير المبكرة
- تعلم على الضغوطات الاجتماعية

**4. دعم عائلي وأصدقاء:**
- تواصل مع عائلتك
- كون صداقات صحية
- اطلب المساعدة وقت اللزوم

**في الجزائر:**
- برامج توعية في المدارس والجامعات
- مراكز الشباب والرياضة
- جمعيات المجتمع المدني

عندك سؤال محدد على الوقاية؟`

const centersResponse = `في الجزائر، عندنا مراكز متخصصة في كل الولايات. 🏥

**مراكز الدعم الرئيسية:**

**1. المراكز المتوسطة لعلاج الإدمان (CISA)**
- موجودة في كل ولاية
- خدمات مجانية
- فريق متخصص (أطباء، نفسانيين، مساعدين اجتماعيين)

**2. الخط الأخضر: 3033**
- مجاني ومتاح 24/7
- سرية تامة
- استشارات وتوجيه

**3. مستشفيات الصحة النفسية:**
- أقسام متخصصة في علاج الإدمان
- برامج إعادة التأهيل

**4. الجمعيات:**
- جمعية "البدر" للوقاية من الإدمان
- جمعيات محلية في كل ولاية

**للحصول على معلومات دقيقة:**
- اتصل بـ 3033
- زور أقرب مركز صحي
- تواصل مع مديرية الصحة في ولايتك

حاب معلومات أكثر على مركز معين؟`

const defaultResponse = `شكراً على ثقتك. أنا هنا باش نسمعك ونساعدك. 💚

نقدر نحكيو على:
• **الدعم النفسي**: إذا كنت تحس بضغط أو قلق
• **معلومات على المخدرات**: أضرارها وكيفاش نتجنبوها
• **مساعدة الآخرين**: كيفاش تساعد شخص قريب منك
• **مراكز الدعم**: وين تلقى مساعدة مهنية في الجزائر

**تذكر دائماً:**
- راك ماشي وحدك
- طلب المساعدة علامة قوة مش ضعف
- التعافي ممكن والأمل موجود

📞 **للطوارئ: 3033** (مجاني 24/7)

كيفاش نقدر نساعدك بالضبط؟`
