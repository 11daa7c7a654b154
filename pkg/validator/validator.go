// Package validator 注册gin binding使用的自定义校验规则
//
// 自定义tag:
//   - price2dp: 金额最多两位小数(decimal.Decimal / *decimal.Decimal)
//   - uniquecode: ISBN(10/13位数字,允许连字符)或SKU(大写字母、数字、连字符)
//
// 具体使用哪种编码由目录schema决定,这里只做格式层面的粗校验
package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	codePattern = regexp.MustCompile(`^[0-9A-Z-]{3,32}$`)
	once        sync.Once
	registerErr error
)

// Register 把自定义规则注册到gin默认校验器,可重复调用
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding validator不是validator/v10")
			return
		}
		registerErr = Setup(v)
	})
	return registerErr
}

// Setup 在指定校验器上注册自定义规则
func Setup(v *validator.Validate) error {
	// 1. 字段名使用json tag,错误详情与请求体字段一致
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// 2. decimal按字符串参与校验
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("price2dp", validatePrice2dp); err != nil {
		return err
	}
	return v.RegisterValidation("uniquecode", validateUniqueCode)
}

func validatePrice2dp(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.Equal(d.Round(2))
}

func validateUniqueCode(fl validator.FieldLevel) bool {
	return codePattern.MatchString(fl.Field().String())
}

// Details 把校验错误转换为字段 → 失败规则
// 非校验错误(如JSON格式错误)返回nil
func Details(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fe.Namespace()
		// 去掉顶层结构体名
		if i := strings.IndexByte(key, '.'); i >= 0 {
			key = key[i+1:]
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[key] = rule
	}
	return details
}
