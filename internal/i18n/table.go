package i18n

// translations is the static, fully-enumerated table:
// language -> namespace -> key -> localized string. Keep the key sets
// identical across all four languages; the totality test fails the
// build's test run otherwise.
var translations = map[Language]map[string]map[string]string{
	English: {
		"nav": {
			"home":      "Home",
			"chat":      "Chat",
			"resources": "Resources",
			"about":     "About",
			"settings":  "Settings",
			"signIn":    "Sign in",
			"startChat": "Start chat",
		},
		"home": {
			"welcome":   "Welcome to Amal",
			"tagline":   "Your companion in recovery",
			"startChat": "Start a conversation",
			"crisis":    "Crisis: 3033",
			"anonymous": "100% Anonymous",
			"madeFor":   "Made for Algeria",
		},
		"chat": {
			"typeMessage":     "Type your message...",
			"thinking":        "Thinking...",
			"newChat":         "New Chat",
			"history":         "Chat History",
			"newConversation": "New conversation",
			"temporaryChat":   "Temporary chat",
			"temporaryNotice": "This conversation will not be saved",
			"offlineReply":    "I'm here for you, even offline. Please try again in a moment.",
		},
		"auth": {
			"welcomeBack":      "Welcome back",
			"email":            "Email",
			"password":         "Password",
			"fullName":         "Full name",
			"signIn":           "Sign in",
			"signUp":           "Sign up",
			"signOut":          "Sign out",
			"forgotPassword":   "Forgot password?",
			"resetPassword":    "Reset password",
			"continueAsGuest":  "Continue as guest",
			"passwordsNoMatch": "Passwords do not match",
		},
		"settings": {
			"language": "Language",
			"darkMode": "Dark Mode",
			"about":    "About",
		},
		"resources": {
			"emergency":    "Emergency",
			"crisisLine":   "Crisis Line",
			"available247": "Available 24/7",
			"centers":      "Support centers",
		},
		"errors": {
			"connection":    "Connection error. Please try again.",
			"loginFailed":   "Login failed",
			"signupFailed":  "Signup failed",
			"resetFailed":   "Reset failed",
			"messageEmpty":  "Please type a message first",
			"messageTooLng": "Message too long",
		},
	},
	Arabic: {
		"nav": {
			"home":      "الرئيسية",
			"chat":      "محادثة",
			"resources": "الموارد",
			"about":     "حول",
			"settings":  "الإعدادات",
			"signIn":    "تسجيل الدخول",
			"startChat": "ابدأ المحادثة",
		},
		"home": {
			"welcome":   "مرحباً بك في أمل",
			"tagline":   "رفيقك في رحلة التعافي",
			"startChat": "ابدأ محادثة",
			"crisis":    "للطوارئ: 3033",
			"anonymous": "سرية تامة",
			"madeFor":   "صُنع من أجل الجزائر",
		},
		"chat": {
			"typeMessage":     "اكتب رسالتك...",
			"thinking":        "جاري التفكير...",
			"newChat":         "محادثة جديدة",
			"history":         "سجل المحادثات",
			"newConversation": "محادثة جديدة",
			"temporaryChat":   "محادثة مؤقتة",
			"temporaryNotice": "لن يتم حفظ هذه المحادثة",
			"offlineReply":    "أنا هنا من أجلك حتى بدون اتصال. حاول مرة أخرى بعد قليل.",
		},
		"auth": {
			"welcomeBack":      "مرحباً بعودتك",
			"email":            "البريد الإلكتروني",
			"password":         "كلمة المرور",
			"fullName":         "الاسم الكامل",
			"signIn":           "تسجيل الدخول",
			"signUp":           "إنشاء حساب",
			"signOut":          "تسجيل الخروج",
			"forgotPassword":   "نسيت كلمة المرور؟",
			"resetPassword":    "إعادة تعيين كلمة المرور",
			"continueAsGuest":  "المتابعة كضيف",
			"passwordsNoMatch": "كلمتا المرور غير متطابقتين",
		},
		"settings": {
			"language": "اللغة",
			"darkMode": "الوضع الداكن",
			"about":    "حول",
		},
		"resources": {
			"emergency":    "طوارئ",
			"crisisLine":   "خط الأزمات",
			"available247": "متاح 24/7",
			"centers":      "مراكز الدعم",
		},
		"errors": {
			"connection":    "خطأ في الاتصال. يرجى المحاولة مرة أخرى.",
			"loginFailed":   "فشل تسجيل الدخول",
			"signupFailed":  "فشل إنشاء الحساب",
			"resetFailed":   "فشلت إعادة التعيين",
			"messageEmpty":  "اكتب رسالة أولاً",
			"messageTooLng": "الرسالة طويلة جداً",
		},
	},
	French: {
		"nav": {
			"home":      "Accueil",
			"chat":      "Discussion",
			"resources": "Ressources",
			"about":     "À propos",
			"settings":  "Paramètres",
			"signIn":    "Se connecter",
			"startChat": "Commencer",
		},
		"home": {
			"welcome":   "Bienvenue sur Amal",
			"tagline":   "Votre compagnon de rétablissement",
			"startChat": "Commencer une conversation",
			"crisis":    "Urgence : 3033",
			"anonymous": "100% anonyme",
			"madeFor":   "Conçu pour l'Algérie",
		},
		"chat": {
			"typeMessage":     "Écrivez votre message...",
			"thinking":        "Réflexion...",
			"newChat":         "Nouvelle discussion",
			"history":         "Historique",
			"newConversation": "Nouvelle conversation",
			"temporaryChat":   "Discussion temporaire",
			"temporaryNotice": "Cette conversation ne sera pas enregistrée",
			"offlineReply":    "Je suis là pour vous, même hors ligne. Réessayez dans un instant.",
		},
		"auth": {
			"welcomeBack":      "Bon retour",
			"email":            "E-mail",
			"password":         "Mot de passe",
			"fullName":         "Nom complet",
			"signIn":           "Se connecter",
			"signUp":           "S'inscrire",
			"signOut":          "Se déconnecter",
			"forgotPassword":   "Mot de passe oublié ?",
			"resetPassword":    "Réinitialiser le mot de passe",
			"continueAsGuest":  "Continuer en invité",
			"passwordsNoMatch": "Les mots de passe ne correspondent pas",
		},
		"settings": {
			"language": "Langue",
			"darkMode": "Mode sombre",
			"about":    "À propos",
		},
		"resources": {
			"emergency":    "Urgence",
			"crisisLine":   "Ligne de crise",
			"available247": "Disponible 24/7",
			"centers":      "Centres de soutien",
		},
		"errors": {
			"connection":    "Erreur de connexion. Veuillez réessayer.",
			"loginFailed":   "Échec de la connexion",
			"signupFailed":  "Échec de l'inscription",
			"resetFailed":   "Échec de la réinitialisation",
			"messageEmpty":  "Écrivez d'abord un message",
			"messageTooLng": "Message trop long",
		},
	},
	Darija: {
		"nav": {
			"home":      "الرئيسية",
			"chat":      "هدرة",
			"resources": "الموارد",
			"about":     "على أمل",
			"settings":  "الإعدادات",
			"signIn":    "دخول",
			"startChat": "ابدا الهدرة",
		},
		"home": {
			"welcome":   "مرحبا بيك في أمل",
			"tagline":   "رفيقك في رحلة التعافي",
			"startChat": "ابدا هدرة",
			"crisis":    "للطوارئ: 3033",
			"anonymous": "سرية تامة",
			"madeFor":   "مصنوع للجزائر",
		},
		"chat": {
			"typeMessage":     "اكتب رسالتك...",
			"thinking":        "راني نفكر...",
			"newChat":         "هدرة جديدة",
			"history":         "تاريخ الهدرة",
			"newConversation": "هدرة جديدة",
			"temporaryChat":   "هدرة مؤقتة",
			"temporaryNotice": "هاد الهدرة ما تتسجلش",
			"offlineReply":    "راني هنا معاك حتى بلا اتصال. عاود جرب من بعد.",
		},
		"auth": {
			"welcomeBack":      "مرحبا بيك من جديد",
			"email":            "الإيميل",
			"password":         "كلمة السر",
			"fullName":         "الاسم الكامل",
			"signIn":           "دخول",
			"signUp":           "تسجيل",
			"signOut":          "خروج",
			"forgotPassword":   "نسيت كلمة السر؟",
			"resetPassword":    "بدل كلمة السر",
			"continueAsGuest":  "كمل كضيف",
			"passwordsNoMatch": "كلمات السر ماشي كيف كيف",
		},
		"settings": {
			"language": "اللغة",
			"darkMode": "الوضع الداكن",
			"about":    "على أمل",
		},
		"resources": {
			"emergency":    "طوارئ",
			"crisisLine":   "خط الأزمات",
			"available247": "متوفر 24/7",
			"centers":      "مراكز الدعم",
		},
		"errors": {
			"connection":    "كاين مشكل في الاتصال. عاود جرب.",
			"loginFailed":   "ما قدرناش ندخلوك",
			"signupFailed":  "ما قدرناش نسجلوك",
			"resetFailed":   "ما تبدلتش كلمة السر",
			"messageEmpty":  "اكتب رسالة قبل",
			"messageTooLng": "الرسالة طويلة بزاف",
		},
	},
}
