package wrapper

import "github.com/gofiber/fiber/v2"

type JSONResult struct {
	Code    int         `json:"-"`
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func ResponseSuccess(httpCode int, data interface{}) JSONResult {
	return JSONResult{
		Code:    httpCode,
		Success: true,
		Message: "Success",
		Data:    data,
	}
}

func ResponseFailed(httpCode int, message string, data interface{}) JSONResult {
	return JSONResult{
		Code:    httpCode,
		Success: false,
		Message: message,
		Data:    data,
	}
}

// Send writes a JSONResult to the response: failures carry the full
// envelope, successes carry only the payload.
func Send(c *fiber.Ctx, res JSONResult) error {
	if res.Code == fiber.StatusNoContent {
		return c.SendStatus(res.Code)
	}
	if !res.Success {
		return c.Status(res.Code).JSON(res)
	}
	return c.Status(res.Code).JSON(res.Data)
}
