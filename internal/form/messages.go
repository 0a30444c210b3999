package form

// Messages holds the localized per-field validation texts. The site ships
// Russian and Kyrgyz tables; toast texts below exist only in Russian.
type Messages struct {
	Required      string
	Email         string
	Phone         string
	QuantityRange string
}

var RU = Messages{
	Required:      "Это поле обязательно для заполнения",
	Email:         "Пожалуйста, введите корректный email",
	Phone:         "Пожалуйста, введите корректный номер телефона",
	QuantityRange: "Количество должно быть от 1 до 100",
}

var KY = Messages{
	Required:      "Бул талаа толтуруу зарыл",
	Email:         "Туура email дарегин киргизиңиз",
	Phone:         "Туура телефон номерин киргизиңиз",
	QuantityRange: "Саны 1ден 100гө чейин болушу керек",
}

// Submission feedback texts
const (
	MsgFixFormErrors = "Пожалуйста, исправьте ошибки в форме"
	MsgSending       = "Отправка..."
	MsgSubmitLabel   = "Оформить заказ"
	MsgOrderSuccess  = "Заказ успешно оформлен! Мы свяжемся с вами в ближайшее время."
	MsgSubmitFailed  = "Произошла ошибка при отправке формы. Пожалуйста, попробуйте позже."
)
